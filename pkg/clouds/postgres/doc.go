// Package postgres bootstraps an application database on a managed PostgreSQL cluster:
// it installs pgvector, creates the application role when it is missing and grants it
// the privileged cluster role. Every statement is safe to re-run.
package postgres
