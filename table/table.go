package table

import "strconv"

//============================================= Table operations


// Insert adds a new row at rawIndex, converted to the declared index type,
//	with the given column fields. Fails with DuplicateIndex if the index is
//	already present; the existing row is unchanged. Fields for declared
//	columns not present in fields default to the empty string, per §3's
//	column-addition default-population rule applied symmetrically to insert.
func (t *Table[I]) Insert(rawIndex string, fields Row) error {
	index, err := t.parseIndex(rawIndex)
	if err != nil {
		return newArgErr(InvalidIndexType, "%q: %v", rawIndex, err)
	}

	if _, exists := t.rows[index]; exists {
		return newArgErr(DuplicateIndex, "%v", index)
	}

	validated, err := t.validateFields(fields)
	if err != nil {
		return err
	}

	t.rows[index] = &row[I]{index: index, raw: validated}
	return nil
}

// Update replaces the row fields at rawIndex. Fails with MissingIndex if the
//	index is not present.
func (t *Table[I]) Update(rawIndex string, fields Row) error {
	index, err := t.parseIndex(rawIndex)
	if err != nil {
		return newArgErr(InvalidIndexType, "%q: %v", rawIndex, err)
	}

	r, exists := t.rows[index]
	if !exists {
		return newArgErr(MissingIndex, "%v", index)
	}

	validated, err := t.validateFields(fields)
	if err != nil {
		return err
	}

	for name, value := range validated {
		r.raw[name] = value
	}

	return nil
}

// Delete removes the row at rawIndex. Fails with MissingIndex if absent.
func (t *Table[I]) Delete(rawIndex string) error {
	index, err := t.parseIndex(rawIndex)
	if err != nil {
		return newArgErr(InvalidIndexType, "%q: %v", rawIndex, err)
	}

	if _, exists := t.rows[index]; !exists {
		return newArgErr(MissingIndex, "%v", index)
	}

	delete(t.rows, index)
	return nil
}

// Get returns a copy of the row stored at rawIndex.
func (t *Table[I]) Get(rawIndex string) (Row, error) {
	index, err := t.parseIndex(rawIndex)
	if err != nil {
		return nil, newArgErr(InvalidIndexType, "%q: %v", rawIndex, err)
	}

	r, exists := t.rows[index]
	if !exists {
		return nil, newArgErr(MissingIndex, "%v", index)
	}

	cloned := make(Row, len(r.raw))
	for k, v := range r.raw {
		cloned[k] = v
	}

	return cloned, nil
}

// RowExists reports whether rawIndex has a stored row.
func (t *Table[I]) RowExists(rawIndex string) bool {
	index, err := t.parseIndex(rawIndex)
	if err != nil {
		return false
	}

	_, exists := t.rows[index]
	return exists
}

// AddColumn appends a new column to the schema, populating every existing
//	row with an empty string for it, per §3.
func (t *Table[I]) AddColumn(name string, colType ColumnType) error {
	for _, c := range t.columns {
		if c.Name == name {
			return newArgErr(UnknownColumn, "%q", name)
		}
	}

	t.columns = append(t.columns, Column{Name: name, Type: colType})

	for _, r := range t.rows {
		if _, ok := r.raw[name]; !ok {
			r.raw[name] = ""
		}
	}

	return nil
}

func (t *Table[I]) validateFields(fields Row) (Row, error) {
	validated := make(Row, len(t.columns))

	for _, col := range t.columns {
		value, ok := fields[col.Name]
		if !ok {
			validated[col.Name] = ""
			continue
		}

		if err := validateColumnValue(col.Type, value); err != nil {
			return nil, newArgErr(InvalidFieldValue, "column %q: %v", col.Name, err)
		}

		validated[col.Name] = value
	}

	return validated, nil
}

func validateColumnValue(colType ColumnType, value string) error {
	switch colType {
	case ColumnInt:
		_, err := strconv.ParseInt(value, 10, 64)
		return err
	case ColumnFloat:
		_, err := strconv.ParseFloat(value, 64)
		return err
	case ColumnBool:
		_, err := strconv.ParseBool(value)
		return err
	default:
		return nil
	}
}
