package timsort

// Observer receives instrumentation events from the driver and the
// merger, as an explicit, non-global hook rather than package-level
// counters.
//
// A Policy passed to SortFuncPolicy may additionally implement Observer;
// when it does, the sort reports through it as it runs. Implementations
// must tolerate being called from a single synchronous call stack with
// no concurrency of their own to manage.
type Observer interface {
	// OnRunDetected reports the length of a run as it is pushed onto
	// the stack, before any consolidation.
	OnRunDetected(length int)
	// OnMerge reports the total number of elements written by one
	// merge of two adjacent runs.
	OnMerge(elements int)
	// OnGallop reports one entry into gallop mode during a merge.
	OnGallop()
}

// asObserver extracts the Observer interface from a Policy, if it
// implements one. Returns a noopObserver otherwise so call sites never
// need a nil check.
func asObserver(p Policy) Observer {
	if o, ok := p.(Observer); ok {
		return o
	}
	return noopObserver{}
}

type noopObserver struct{}

func (noopObserver) OnRunDetected(int) {}
func (noopObserver) OnMerge(int)       {}
func (noopObserver) OnGallop()         {}
