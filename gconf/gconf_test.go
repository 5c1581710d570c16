package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tokenswap"
	"github.com/iov-one/tokenswap/errors"
	"github.com/iov-one/tokenswap/store"
	"github.com/iov-one/tokenswap/swaptest/assert"
)

type limits struct {
	Max  uint64 `json:"max"`
	Name string `json:"name"`
}

func (l *limits) Validate() error {
	if l.Max == 0 {
		return errors.Wrap(errors.ErrEmpty, "max")
	}
	return nil
}

func (l *limits) Marshal() ([]byte, error) {
	w := limitsWire(*l)
	return proto.Marshal(&w)
}

func (l *limits) Unmarshal(raw []byte) error {
	var w limitsWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return err
	}
	*l = limits(w)
	return nil
}

// limitsWire is the tagged form of limits, encoded by reflection.
type limitsWire struct {
	Max  uint64 `protobuf:"varint,1,opt,name=max,proto3"`
	Name string `protobuf:"bytes,2,opt,name=name,proto3"`
}

func (m *limitsWire) Reset()         { *m = limitsWire{} }
func (m *limitsWire) String() string { return proto.CompactTextString(m) }
func (*limitsWire) ProtoMessage()    {}

func TestSaveLoad(t *testing.T) {
	cases := map[string]struct {
		conf        *limits
		wantSaveErr *errors.Error
		wantLoadErr *errors.Error
	}{
		"valid configuration": {
			conf: &limits{Max: 12, Name: "twelve"},
		},
		"invalid configuration cannot be saved": {
			conf:        &limits{Name: "zero"},
			wantSaveErr: errors.ErrEmpty,
			wantLoadErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "mypkg", tc.conf); !tc.wantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %+v", err)
			}
			var got limits
			if err := Load(db, "mypkg", &got); !tc.wantLoadErr.Is(err) {
				t.Fatalf("unexpected load error: %+v", err)
			}
			if tc.wantLoadErr == nil {
				assert.Equal(t, *tc.conf, got)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	db := store.MemStore()
	opts := tokenswap.Options{
		"conf": json.RawMessage(`{"mypkg": {"max": 5, "name": "five"}}`),
	}
	assert.Nil(t, InitConfig(db, opts, "mypkg", &limits{}))

	var got limits
	assert.Nil(t, Load(db, "mypkg", &got))
	assert.Equal(t, limits{Max: 5, Name: "five"}, got)

	err := InitConfig(db, opts, "otherpkg", &limits{})
	assert.IsErr(t, errors.ErrNotFound, err)

	bad := tokenswap.Options{"conf": json.RawMessage(`{"mypkg": {"max": 0}}`)}
	err = InitConfig(db, bad, "mypkg", &limits{})
	assert.IsErr(t, errors.ErrEmpty, err)
}
