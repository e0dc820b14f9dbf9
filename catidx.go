// Package catidx builds a structured index of an OCR'd product catalog.
// It processes a directory of page-level PDF files, derives a catalog
// record per page (title, product mentions, keywords, summary, section
// membership) using text heuristics, and groups page numbers by catalog
// section.
//
// This package contains domain types, heuristics, and interfaces following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// pdftotext/, fs/).
package catidx
