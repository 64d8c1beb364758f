// Package process controls the lifecycle of child OS processes.
//
// A child started through os/exec can be asked to exit with
// Terminate, which sends a signal (os.Interrupt unless configured
// otherwise) and waits for the process to exit. Actor adapts the
// same behavior to an oklog/run group.
package process
