package domain

// SyncOutcome is the explicit result of a best-effort vector store write
// performed as a side effect of a catalog mutation. The catalog write has
// already committed by the time this value exists; callers inspect it only
// for logging, never to roll back.
type SyncOutcome struct {
	err error
}

// SyncOK reports a successful vector store sync.
func SyncOK() SyncOutcome { return SyncOutcome{} }

// SyncFailed reports a failed sync with its reason.
func SyncFailed(err error) SyncOutcome { return SyncOutcome{err: err} }

// Failed reports whether the sync failed.
func (o SyncOutcome) Failed() bool { return o.err != nil }

// Reason returns the failure cause, nil when the sync succeeded.
func (o SyncOutcome) Reason() error { return o.err }

func (o SyncOutcome) String() string {
	if o.err == nil {
		return "ok"
	}
	return "failed: " + o.err.Error()
}
