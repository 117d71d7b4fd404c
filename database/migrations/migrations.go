// Package migrations registers the schema migrations. Import it for its
// side effects before building a migration.Runner.
package migrations
