// SPDX-License-Identifier: MIT

// Package arrowio moves table.Table values in and out of Apache Arrow, and
// through Arrow to CSV and Parquet files.
//
// Arrow → table kind mapping:
//
//	int8..int64, uint8..uint64        → Integer (magnitude above 2^53: table.ErrIntRange)
//	float32, float64                  → Integer when every kept value is whole
//	                                    (see table.IsIntegral), Continuous otherwise
//	bool                              → Boolean
//	string, large_string              → Categorical (levels: field metadata, else first-encountered)
//	dictionary<*, string>             → Categorical (levels: dictionary order)
//	date32, date64                    → Temporal (Day)
//	timestamp (any unit)              → Temporal (Second)
//
// Missing values: a row holding a null (or a float NaN) in any column is
// dropped before the table is built (complete cases). A table with no
// complete row is ErrNoRows.
//
// table → Arrow writes float64, int64, bool, string (with the level set
// stored under the MetadataLevels field metadata key), date32 and
// timestamp[s, UTC].
package arrowio
