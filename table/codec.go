package table

import (
	"github.com/lost-ferry/ferry-db/buffer"
	"github.com/lost-ferry/ferry-db/serial"
)

//============================================= Table binary format (§4.3)
//
// [ TableHeader ] [ row_count rows ]
//
// TableHeader (magic, version, row_count) is a supplement over the literal
// spec text, which only requires a bare row_count prefix: original_source's
// IndexedTableSerializerTags::INDEXED_TABLE magic constant is recovered here
// so a table file rejects the wrong object kind the same way a graph file
// does, per §6's general "a reader must reject any file whose magic does
// not match the expected object kind" rule.

const tableHeaderSize = 24

// SerializedSize computes the exact byte length Serialize will produce.
func (t *Table[I]) SerializedSize() uint64 {
	size := uint64(tableHeaderSize)

	stringCodec := serial.StringCodec()

	for _, r := range t.rows {
		size += t.indexCodec.Size(r.index)
		for _, col := range t.columns {
			size += stringCodec.Size(r.raw[col.Name])
		}
	}

	return size
}

// Serialize encodes the table per §4.3: the magic/version/row_count header
//	followed by each row's index field and schema columns in declared order.
func (t *Table[I]) Serialize() (*buffer.Buffer, error) {
	size := t.SerializedSize()
	out := buffer.New(size)
	data := out.Bytes()

	serial.PutUint64(data[0:], serial.IndexedTableMagic)
	serial.PutUint64(data[8:], serial.LayoutVersion1)
	serial.PutUint64(data[16:], uint64(len(t.rows)))

	stringCodec := serial.StringCodec()
	cursor := uint64(tableHeaderSize)

	for _, r := range t.rows {
		idxBuf, err := t.indexCodec.Encode(r.index)
		if err != nil {
			return nil, serial.New(serial.SerializableDataCorrupted, "encoding row index: %v", err)
		}
		copy(data[cursor:], idxBuf.Bytes())
		cursor += idxBuf.Len()

		for _, col := range t.columns {
			fieldBuf, err := stringCodec.Encode(r.raw[col.Name])
			if err != nil {
				return nil, serial.New(serial.SerializableDataCorrupted, "encoding column %q: %v", col.Name, err)
			}
			copy(data[cursor:], fieldBuf.Bytes())
			cursor += fieldBuf.Len()
		}
	}

	return out, nil
}

// Deserialize reconstructs the table's rows from buf using the schema
//	already declared on t (schema is not persisted on disk, per §4.3). If the
//	reader's schema disagrees with the byte stream, decoding fails with a
//	DeserializableDataCorrupted serial.Error.
func (t *Table[I]) Deserialize(buf *buffer.Buffer) error {
	if buf.Len() == 0 {
		return serial.ErrNoDeserializableData
	}

	if buf.Len() < tableHeaderSize {
		return serial.New(serial.DeserializableDataCorrupted, "buffer too short for table header: %d bytes", buf.Len())
	}

	data := buf.Bytes()

	magic := serial.GetUint64(data[0:])
	if magic != serial.IndexedTableMagic {
		return serial.New(serial.DeserializableDataCorrupted, "unexpected magic number %#x", magic)
	}

	version := serial.GetUint64(data[8:])
	if version != serial.LayoutVersion1 {
		return serial.New(serial.DeserializableDataCorrupted, "unknown layout version %d", version)
	}

	rowCount := serial.GetUint64(data[16:])
	total := uint64(len(data))

	stringCodec := serial.StringCodec()
	rows := make(map[I]*row[I], rowCount)
	cursor := uint64(tableHeaderSize)

	for i := uint64(0); i < rowCount; i++ {
		remaining, ok := buf.Slice(cursor, total)
		if !ok {
			return serial.New(serial.DeserializableDataCorrupted, "row %d index reads past buffer end", i)
		}

		index, err := t.indexCodec.Decode(remaining)
		if err != nil {
			return serial.New(serial.DeserializableDataCorrupted, "decoding row %d index: %v", i, err)
		}
		cursor += t.indexCodec.Size(index)

		rawRow := make(Row, len(t.columns))

		for _, col := range t.columns {
			fieldView, ok := buf.Slice(cursor, total)
			if !ok {
				return serial.New(serial.DeserializableDataCorrupted, "row %d column %q reads past buffer end", i, col.Name)
			}

			value, err := stringCodec.Decode(fieldView)
			if err != nil {
				return serial.New(serial.DeserializableDataCorrupted, "decoding row %d column %q: %v", i, col.Name, err)
			}

			cursor += stringCodec.Size(value)
			rawRow[col.Name] = value
		}

		rows[index] = &row[I]{index: index, raw: rawRow}
	}

	if cursor != total {
		return serial.New(serial.DeserializableDataCorrupted, "table payload length %d does not match buffer end %d", cursor, total)
	}

	t.rows = rows
	return nil
}
