package table

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lost-ferry/ferry-db/serial"
)

func newEmployeeTable() *Table[int64] {
	return New[int64](
		serial.Int64Codec(),
		func(raw string) (int64, error) { return strconv.ParseInt(raw, 10, 64) },
		Column{Name: "Name", Type: ColumnString},
		Column{Name: "Age", Type: ColumnInt},
		Column{Name: "Salary", Type: ColumnFloat},
	)
}

// TestS2TableRoundTrip covers scenario S2's in-memory assertions (the
// save/load half is covered in objectmanager/manager_test.go since it needs
// an ObjectManager).
func TestS2TableRoundTrip(t *testing.T) {
	tbl := buildS2Table(t)
	assertS2Invariants(t, tbl)
}

func buildS2Table(t *testing.T) *Table[int64] {
	t.Helper()
	r := require.New(t)

	tbl := newEmployeeTable()
	r.NoError(tbl.Insert("1", Row{"Name": "Alice", "Age": "30", "Salary": "50000"}))
	r.NoError(tbl.Insert("2", Row{"Name": "Bob", "Age": "40", "Salary": "60000"}))

	return tbl
}

func assertS2Invariants(t *testing.T, tbl *Table[int64]) {
	t.Helper()
	r := require.New(t)

	r.True(tbl.RowExists("1"))
	r.True(tbl.RowExists("2"))

	alice, err := tbl.Get("1")
	r.NoError(err)
	r.Equal("Alice", alice["Name"])

	bob, err := tbl.Get("2")
	r.NoError(err)
	r.Equal("Bob", bob["Name"])
}

func TestInsertDuplicateIndexFails(t *testing.T) {
	tbl := newEmployeeTable()
	r := require.New(t)

	r.NoError(tbl.Insert("1", Row{"Name": "Alice", "Age": "30", "Salary": "50000"}))

	err := tbl.Insert("1", Row{"Name": "Eve", "Age": "99", "Salary": "1"})
	r.ErrorIs(err, &ArgumentError{Kind: DuplicateIndex})

	row, getErr := tbl.Get("1")
	r.NoError(getErr)
	r.Equal("Alice", row["Name"])
}

func TestInsertInvalidFieldValueRejected(t *testing.T) {
	tbl := newEmployeeTable()
	r := require.New(t)

	err := tbl.Insert("1", Row{"Name": "Alice", "Age": "not-a-number", "Salary": "50000"})
	r.ErrorIs(err, &ArgumentError{Kind: InvalidFieldValue})
	r.False(tbl.RowExists("1"))
}

func TestUpdateMissingIndexFails(t *testing.T) {
	tbl := newEmployeeTable()
	r := require.New(t)

	err := tbl.Update("1", Row{"Name": "Alice", "Age": "30", "Salary": "50000"})
	r.ErrorIs(err, &ArgumentError{Kind: MissingIndex})
}

func TestDeleteRemovesRow(t *testing.T) {
	tbl := buildS2Table(t)
	r := require.New(t)

	r.NoError(tbl.Delete("1"))
	r.False(tbl.RowExists("1"))
	r.True(tbl.RowExists("2"))
}

func TestAddColumnPopulatesExistingRows(t *testing.T) {
	tbl := buildS2Table(t)
	r := require.New(t)

	r.NoError(tbl.AddColumn("Department", ColumnString))

	alice, err := tbl.Get("1")
	r.NoError(err)
	r.Equal("", alice["Department"])
}

func TestTableSerializedSizeMatchesOutput(t *testing.T) {
	tbl := buildS2Table(t)
	r := require.New(t)

	predicted := tbl.SerializedSize()

	buf, err := tbl.Serialize()
	r.NoError(err)
	r.Equal(predicted, buf.Len())
}

func TestTableRoundTrip(t *testing.T) {
	tbl := buildS2Table(t)
	r := require.New(t)

	buf, err := tbl.Serialize()
	r.NoError(err)

	decoded := newEmployeeTable()
	r.NoError(decoded.Deserialize(buf))

	assertS2Invariants(t, decoded)
}
