// Package calculator implements the financial calculator engine: a closed
// set of calculator types (loan readiness, DTI, affordability, credit
// simulator, savings), each pairing a declarative field schema with a
// deterministic scoring or amortization algorithm, and a Registry that
// dispatches sanitize → validate → calculate by type name.
//
// The engine is stateless and side-effect free: definitions are immutable
// after registration, every Process call reads only its own input, and
// persistence, rendering and tracking are collaborators of the caller, never
// of this package.
package calculator
