package record

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire layout:
//
//	message Records { repeated Record records = 1; }
//	message Record {
//	  string session_id = 1;
//	  int32  score = 2;
//	  int32  length = 3;
//	  int32  ticks = 4;
//	  int64  finished_at_unix_ms = 5;
//	}
const (
	fieldRecords = protowire.Number(1)

	fieldSessionID  = protowire.Number(1)
	fieldScore      = protowire.Number(2)
	fieldLength     = protowire.Number(3)
	fieldTicks      = protowire.Number(4)
	fieldFinishedAt = protowire.Number(5)
)

func Marshal(records []Record) []byte {
	var b []byte
	for _, r := range records {
		b = protowire.AppendTag(b, fieldRecords, protowire.BytesType)
		b = protowire.AppendBytes(b, marshalRecord(r))
	}
	return b
}

func marshalRecord(r Record) []byte {
	var b []byte
	if r.SessionID != "" {
		b = protowire.AppendTag(b, fieldSessionID, protowire.BytesType)
		b = protowire.AppendString(b, r.SessionID)
	}
	b = appendInt(b, fieldScore, int64(r.Score))
	b = appendInt(b, fieldLength, int64(r.Length))
	b = appendInt(b, fieldTicks, int64(r.Ticks))
	if !r.FinishedAt.IsZero() {
		b = appendInt(b, fieldFinishedAt, r.FinishedAt.UnixMilli())
	}
	return b
}

func appendInt(b []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func Unmarshal(b []byte) ([]Record, error) {
	records := make([]Record, 0)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("record: bad tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		if num == fieldRecords && typ == protowire.BytesType {
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("record: bad record bytes: %w", protowire.ParseError(n))
			}
			r, err := unmarshalRecord(v)
			if err != nil {
				return nil, err
			}
			records = append(records, r)
			b = b[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("record: bad field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return records, nil
}

func unmarshalRecord(b []byte) (Record, error) {
	var r Record
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Record{}, fmt.Errorf("record: bad tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldSessionID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return Record{}, fmt.Errorf("record: bad session id: %w", protowire.ParseError(n))
			}
			r.SessionID = v
			b = b[n:]

		case typ == protowire.VarintType && num >= fieldScore && num <= fieldFinishedAt:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Record{}, fmt.Errorf("record: bad varint field %d: %w", num, protowire.ParseError(n))
			}
			switch num {
			case fieldScore:
				r.Score = int32(v)
			case fieldLength:
				r.Length = int32(v)
			case fieldTicks:
				r.Ticks = int32(v)
			case fieldFinishedAt:
				r.FinishedAt = time.UnixMilli(int64(v))
			}
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Record{}, fmt.Errorf("record: bad field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return r, nil
}
