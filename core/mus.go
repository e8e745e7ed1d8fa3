package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the domain types persisted by the storage layer.
// Hand-written against the mus-go primitives; field order is part of the
// storage format and must not change.

type idSer struct{}

// IDMUS serializes an ID as an unsigned varint.
var IDMUS = idSer{}

func (idSer) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idSer) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idSer) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

type partSer struct{}

// PartMUS serializes a Part. Timestamps are stored as microsecond Unix
// values; the Specs map is stored sorted by key so serialization is
// deterministic.
var PartMUS = partSer{}

func (partSer) Marshal(p Part, bs []byte) (n int) {
	n = IDMUS.Marshal(p.Id, bs)
	n += ord.String.Marshal(p.Name, bs[n:])
	n += ord.String.Marshal(p.PartNumber, bs[n:])
	n += ord.String.Marshal(p.Manufacturer, bs[n:])
	n += ord.String.Marshal(p.ComponentType, bs[n:])
	n += ord.String.Marshal(p.Value, bs[n:])
	n += ord.String.Marshal(p.Package, bs[n:])
	n += ord.String.Marshal(p.Notes, bs[n:])
	n += varint.Int.Marshal(len(p.Specs), bs[n:])
	for _, key := range sortedSpecKeys(p.Specs) {
		n += ord.String.Marshal(key, bs[n:])
		n += ord.String.Marshal(p.Specs[key], bs[n:])
	}
	n += marshalTime(p.InsertedAt, bs[n:])
	n += marshalTime(p.UpdatedAt, bs[n:])
	return n
}

func (partSer) Unmarshal(bs []byte) (p Part, n int, err error) {
	var m int
	if p.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	for _, field := range []*string{
		&p.Name, &p.PartNumber, &p.Manufacturer, &p.ComponentType,
		&p.Value, &p.Package, &p.Notes,
	} {
		if *field, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return
		}
		n += m
	}
	var count int
	if count, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += m
	if count > 0 {
		p.Specs = make(map[string]string, count)
	}
	for i := 0; i < count; i++ {
		var key, value string
		if key, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return
		}
		n += m
		if value, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
			return
		}
		n += m
		p.Specs[key] = value
	}
	if p.InsertedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += m
	if p.UpdatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return
	}
	n += m
	return
}

func (partSer) Size(p Part) (size int) {
	size = IDMUS.Size(p.Id)
	for _, field := range []string{
		p.Name, p.PartNumber, p.Manufacturer, p.ComponentType,
		p.Value, p.Package, p.Notes,
	} {
		size += ord.String.Size(field)
	}
	size += varint.Int.Size(len(p.Specs))
	for key, value := range p.Specs {
		size += ord.String.Size(key) + ord.String.Size(value)
	}
	size += sizeTime(p.InsertedAt) + sizeTime(p.UpdatedAt)
	return size
}

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	micros, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(micros).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}
