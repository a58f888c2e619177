// Package contracts defines the structural contracts between this server and
// the Atoms main-backend: the request bodies and query parameter sets the
// tools send, the response-field subsets they read, and the enumerations that
// must stay synchronized with the backend's.
//
// The contract tests in this package are the drift alarm. If the backend
// renames a query key, drops a field, or changes an enum, the corresponding
// schema here must be updated deliberately; tools never repair a contract
// mismatch at runtime, they forward backend errors as-is.
//
// Two tool-facing enumerations deliberately diverge from the backend's
// canonical sets: the call status filter additionally accepts "busy" and the
// campaign status filter additionally accepts "cancelled". Those are named
// exceptions; any other divergence is a bug the enum tests surface.
package contracts
