// Package mutate implements the optimistic-apply protocol shared by every
// record-editing surface: apply the change locally, await the remote call,
// and revert exactly when the call fails.
package mutate

import "context"

// Attempt runs the optimistic transaction. Ordering is guaranteed: apply
// happens-before call starts, and revert (if any) happens-after call
// resolves. On success the optimistic state is left in place and nil is
// returned; on failure revert runs and the call's error is returned.
//
// apply and revert must be synchronous; the caller owns making revert an
// exact inverse (full pre-mutation snapshot, not just the fields it changed).
func Attempt(ctx context.Context, apply func(), call func(context.Context) error, revert func()) error {
	apply()
	if err := call(ctx); err != nil {
		revert()
		return err
	}
	return nil
}

// AttemptDeferred is the call-then-commit variant used for mutations that
// must not surface any intermediate state: the remote call runs first and
// commit only happens after it succeeds.
func AttemptDeferred(ctx context.Context, call func(context.Context) error, commit func()) error {
	if err := call(ctx); err != nil {
		return err
	}
	commit()
	return nil
}
