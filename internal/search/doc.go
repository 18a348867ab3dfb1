// Package search implements the talent ranking engine: fuzzy keyword matching
// across profile fields, position and seniority aware weighting, multi-factor
// scoring, soft filtering, sorting, pagination and aggregate statistics.
//
// Everything here is a pure function of its inputs. The talent pool is fetched
// once per request by the caller and passed in explicitly; nothing is cached
// between requests.
//
// Cost is O(talents x keywords x tokens^2 x token length^2) and is dominated by
// the Levenshtein distance computed for every keyword/text token pair that is not
// an exact substring hit. Large pools with long free-text fields should be narrowed
// by hard filters at the data source before ranking.
package search
