// Package gaf reads Gene Ontology annotation files (GAF 2.x) into per-entity
// term sets, the input of package termset.
//
// Columns used (1-based, as in the GAF 2.2 format):
//
//	2  DB Object ID      entity key
//	3  DB Object Symbol
//	4  Qualifier         "|"-separated; NOT drops the record unless WithNotQualified
//	5  GO ID             annotated term
//	7  Evidence Code
//	10 DB Object Name
//	12 DB Object Type
//
// Term ids are stored as written; resolve alternate ids through
// core.Graph.Resolve before comparing.
package gaf
