// Package scaffold materializes a project template tree into a Helix
// solution.
//
// A run walks the primary template root and, when present, the solution's
// helix-template/ override root. For every entry it rewrites the name, asks
// the inclusion policy whether to copy, skip, or copy-and-mark the file, and
// renders file contents against the run's tokens. After the walks the
// generic serialization configuration is copied unless an override was
// materialized, the placeholder project file is renamed to its final name,
// and the project is handed to the solution registrar.
//
// All run-scoped state (the conflict flag, the list of written files) lives
// in values created by Engine.Materialize, so two runs in one process never
// observe each other.
package scaffold
