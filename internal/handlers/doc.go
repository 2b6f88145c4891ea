// Package handlers implements the HTTP dispatch layer over the scan,
// duplicate, and store operations: scanning a directory, polling scan
// progress, clustering posted record sets, batch deletion, opening files
// in the system viewer, and health reporting.
package handlers
