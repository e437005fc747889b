package diag

// Reporter is the sink contract every analysis phase reports through. It is
// append-only: implementations never hand diagnostics back to the phase.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards everything. Useful for probes that only care whether
// a computation succeeds.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
