// Package importer turns tabular files into candidate products.
//
// Reading is split from parsing. ReadRows picks a reader by file extension:
// comma or tab separated text goes through encoding/csv with lenient quoting,
// xlsx/xlsm workbooks through excelize (first sheet only). Both produce [][]string.
//
// Parse then works on those rows:
//
//  1. Rows that are blank after trimming are dropped.
//  2. The first remaining row is a header when one of its normalized cells is in the
//     header vocabulary (see Aliases). Otherwise it is data.
//  3. Each field gets a column from the alias table, or its positional fallback.
//  4. Every data row becomes one product. Names fall back through combined cells,
//     the first non-empty cell and finally "Product-N". Missing barcodes and SKUs
//     are synthesized from the batch import time and the row index.
//
// Numbers are coerced leniently (ToNumber): anything unparseable is 0, negatives
// are clamped. Ids assigned here are provisional; the reconciler decides the final ones.
package importer
