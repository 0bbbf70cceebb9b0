// Package documents contains the exported document domain entities and the
// service and repository contracts operating on them. Exported documents are
// stored in the exports directory and tracked in the pdfs table.
package documents
