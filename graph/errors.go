package graph

import "errors"

// ErrNoStorage is returned by FetchContext/SolveContext when the Bridge
// was constructed without a storage collaborator.
var ErrNoStorage = errors.New("graph: no storage collaborator configured")
