package query

// Version is the current version of the query module.
const Version = "1.0.0"
