// Package liveseq is a toolkit for virtual sequences: values that look like
// fixed-length slices but compute every element on demand.
//
// 🚀 What is liveseq?
//
//	A small, dependency-light library that brings together:
//		• Base views over a slice or any (length, get, set) triple
//		• Live derived views: map, window, reverse, cache
//		• Aggregates with one length read per call
//		• JSON/YAML realization and Prometheus cache metrics
//
// Packages:
//
//	seq/        — View contract, Seq facade, derived views, aggregates
//	seqmetrics/ — Prometheus collector for cache view activity
//	cmd/lvseq/  — CLI printing views over JSON or YAML arrays
//
// Quick example:
//
//	s := []int{2, 4, 6, 8}
//	r := seq.FromSlice(&s).ReverseLive()
//	s = s[:3]
//	first, _ := r.Get(0) // 6: the reversal tracks the shrink
//
//	go get github.com/katalvlaran/liveseq/seq
package liveseq
