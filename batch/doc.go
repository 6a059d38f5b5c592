// Package batch runs the anonymizer and the converter over files and
// directories.
//
// Every input is processed independently: a file that cannot be read, parsed
// or written is logged, counted as a failure in the Result and left untouched,
// and the run continues with the next file. Inputs ending in .zst, .s2 or .lz4
// are decompressed transparently.
//
// Counters for processed files, emitted rows and anonymized identifiers are
// kept in Metrics and can be dumped for the node exporter textfile collector.
package batch
