package paymentform

// Field identifiers shared by the built-in payment account forms.
const (
	FieldAccountName     FieldID = "ACCOUNT_NAME"
	FieldAccountNr       FieldID = "ACCOUNT_NR"
	FieldAccountOwner    FieldID = "ACCOUNT_OWNER"
	FieldAccountType     FieldID = "ACCOUNT_TYPE"
	FieldAddress         FieldID = "ADDRESS"
	FieldBankID          FieldID = "BANK_ID"
	FieldBankName        FieldID = "BANK_NAME"
	FieldBankSwiftCode   FieldID = "BANK_SWIFT_CODE"
	FieldBeneficiaryName FieldID = "BENEFICIARY_NAME"
	FieldBIC             FieldID = "BIC"
	FieldBranchID        FieldID = "BRANCH_ID"
	FieldCity            FieldID = "CITY"
	FieldCountry         FieldID = "COUNTRY"
	FieldEmail           FieldID = "EMAIL"
	FieldEmailOrMobileNr FieldID = "EMAIL_OR_MOBILE_NR"
	FieldExtraInfo       FieldID = "EXTRA_INFO"
	FieldHolderAddress   FieldID = "HOLDER_ADDRESS"
	FieldHolderName      FieldID = "HOLDER_NAME"
	FieldIBAN            FieldID = "IBAN"
	FieldMobileNr        FieldID = "MOBILE_NR"
	FieldPostalAddress   FieldID = "POSTAL_ADDRESS"
	FieldSortCode        FieldID = "SORT_CODE"
	FieldState           FieldID = "STATE"
	FieldTradeCurrencies FieldID = "TRADE_CURRENCIES"
	FieldUserName        FieldID = "USER_NAME"
)
