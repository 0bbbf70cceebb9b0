// Package meetings contains the meeting note domain entities and the service
// and repository contracts operating on them.
package meetings
