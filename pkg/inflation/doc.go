// Package inflation compounds per-country annual inflation rates over a year
// range and classifies the outcome into a health bucket.
//
// A Series is a sparse year to rate mapping where a year may be present with
// no value. Calculate walks the half-open range [StartYear, EndYear) and
// reports no result when the range is empty or inverted, or when any year in
// it has no rate. Partial compounding is never returned.
package inflation
