// Package exceptions provides structured error propagation with try, catch
// and finally semantics over a static taxonomy of error types.
//
// Errors are raised with a Type and a message. A raise stops the code that
// raised it and hands control to the innermost protected block, whose catch
// clauses are offered the error in declaration order. A clause claims the
// error when its type is the raised type or one of its ancestors. Finally
// bodies always run. An error nobody claims moves on to the enclosing block
// after the finally body; one that escapes every block prints a diagnostic
// and terminates the process with status 1.
//
// # Taxonomy
//
// Types form a tree. RuntimeError is the predefined root and
// NullReferenceError (raised when no type is given) extends it:
//
//	var (
//		IOError      = exceptions.Define("IOError", "I/O failure.", exceptions.RuntimeError)
//		TimeoutError = exceptions.Define("TimeoutError", "Timed out.", IOError)
//	)
//
//	exceptions.IsKindOf(TimeoutError, exceptions.RuntimeError) // true
//
// # Protected blocks
//
//	r := exceptions.MustNew()
//	r.Try(func() {
//		r.Raise(TimeoutError, "no reply from sensor")
//	}).Catch(IOError, func(e exceptions.Error) {
//		fmt.Println("recovered:", e.Message)
//	}).Finally(func() {
//		fmt.Println("cleanup")
//	}).Run()
//
// Blocks nest up to the configured depth (16 by default). Entering one more
// raises RuntimeError "Too many `try` blocks nested." in the enclosing block.
//
// # Current error
//
// Every raise overwrites the runtime's current error: type, message and,
// when provenance is enabled, the file and line of the raise. Messages are
// copied into a fixed buffer and cut to its capacity minus one byte. Current
// returns a snapshot, or a CodeNoError error before the first raise.
//
// # Runtimes
//
// A Runtime owns one frame stack and one current error and is not safe for
// concurrent use. The package-level functions use Default(); goroutines that
// raise concurrently must each create their own with New and may pass it
// along in a context.Context with WithRuntime.
//
// # Low-level primitives
//
// Enter, Advance, InTryStage, InCatchStage, InFinallyStage and Protect are
// the stage machine the Block builder is made of. They are exported for
// callers that need their own block syntax. Such syntax is built on Protect:
// it enters the frame and owns the resumption point a raise returns to.
package exceptions
