package catelog

// UpdateResult describes the outcome of a photo mutation. Store failures are
// reported through the accompanying error instead.
type UpdateResult int

const (
	// UpdateApplied means exactly one document matched the update.
	UpdateApplied UpdateResult = iota
	// UpdateNoOp means there was nothing to change, either because no field
	// was supplied or because the tag is already present.
	UpdateNoOp
	// UpdateNotFound means no photo has the given id.
	UpdateNotFound
	// UpdateInvalid means the input was rejected before reaching the store.
	UpdateInvalid
)

var updateResultNames = map[UpdateResult]string{
	UpdateApplied:  "applied",
	UpdateNoOp:     "no-op",
	UpdateNotFound: "not-found",
	UpdateInvalid:  "invalid",
}

func (r UpdateResult) String() string {
	if s, ok := updateResultNames[r]; ok {
		return s
	}
	return "unknown"
}

// OK collapses the result to the boolean "did the update happen" signal.
func (r UpdateResult) OK() bool {
	return r == UpdateApplied
}
