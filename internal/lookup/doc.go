// Package lookup implements the CEP lookup controller.
//
// A Controller owns the edit session (raw input plus normalized CEP) and a
// QueryState that is always exactly one of Idle, Pending, Success(Address)
// or Failed(ErrorKind). Transitions:
//
//	Idle/Success/Failed --Submit(complete)--> Pending
//	Idle/Success/Failed --Submit(incomplete)--> Failed(InvalidFormat)
//	Pending --Resolve(address)--> Success
//	Pending --Resolve(error)--> Failed(NotFound | NetworkError)
//	any --Reset--> Idle
//
// Submit while Pending is ignored. Every Submit and Reset advances a
// generation counter; an Outcome whose generation is not current is
// discarded by Resolve, so a response arriving after Reset never
// repopulates the form.
//
// The request is split in three steps so an event loop can run the
// network part off its own goroutine:
//
//	ticket, ok := ctrl.Submit(ctx)
//	if ok {
//	    outcome := ctrl.Fetch(ticket) // blocking, any goroutine
//	    ctrl.Resolve(outcome)
//	}
//
// Callers without an event loop use Lookup, which does all three.
package lookup
