// Package process spawns and owns the eve-flipper-backend subprocess.
//
// This package implements the Runner interface by creating the backend
// as a child process with the fixed argument list "--port 13370". It
// handles process lifecycle, output draining, and abnormal-exit
// reporting.
//
// The returned Backend handle retains the child's stdout and stderr
// pipes for the life of the process and drains both into the logger.
// Closing the handle kills the backend; the backend never deliberately
// outlives the shell.
package process
