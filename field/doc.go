// Package field implements reversible text encodings for compound values so
// they fit in a single field of a flat tabular format such as CSV.
//
// Codecs:
//   - Sequence[T]: signed integer list, "-1_1".
//   - Matrix[T]: list of signed integer lists, "-1_1|1_-1".
//   - Dimension[W, H]: unsigned pair, "16x1024".
//   - Coordinate[F]: float pair, "84.99;-135".
//   - Optional[V]: absent value as "", otherwise Inner's text.
//   - Limit[V]: rejects oversized input before decoding.
//
// All codecs are stateless values and safe for concurrent use. Record
// framing, quoting and escaping belong to the CSV reader/writer.
package field
