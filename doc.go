// Package csvfield stores compound values in single CSV fields.
//
// Field types and their text:
//
//	List[T]            []T{-1, 1}                  "-1_1"
//	Rows[T]            [][]T{{-1, 1}, {1, -1}}     "-1_1|1_-1"
//	Size[W, H]         {16, 1024}                  "16x1024"
//	Geo[F]             {84.99, -135}               "84.99;-135"
//	OptionalSize[W, H] absent                      ""
//	OptionalGeo[F]     absent                      ""
//
// Each type implements encoding.TextMarshaler/TextUnmarshaler, so it works
// with encoding/json and CSV struct mappers, plus msgpack and CBOR hooks that
// carry the same text. The encodings themselves live in package field.
//
// Wrap decorates any field.Codec with logging, Hooks and an input size limit:
//
//	sizes := csvfield.MustWrap[field.Pair[uint8, uint16]](field.Dimension[uint8, uint16]{}, csvfield.Options{
//	    Name:      "image_size",
//	    Logger:    zaplog.ZapLogger{L: logger},
//	    MaxDecode: 32,
//	})
//	p, err := sizes.Decode(record[2]) // *FieldError on bad input
//
// Separators are fixed: '_' between list elements, '|' between rows, 'x'
// between width and height, ';' between latitude and longitude.
package csvfield
