// Command companyapi serves the company records API and manages its
// database schema.
//
// Usage:
//
//	companyapi serve [--migrate] [--port 8080]
//	companyapi migrate
//	companyapi migrate:rollback
//	companyapi migrate:status
//	companyapi seed
//	companyapi route:list
//
// Configuration is read from config/app.json, config/app.yaml, .env and the
// process environment, in that order.
package main
