package zid_test

import (
	"encoding/json"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zeroid/zid"
	"github.com/zeroid/zid/errors"
)

func TestAddressPrinting(t *testing.T) {
	Convey("address is printed as upper case hex", t, func() {
		addr := zid.NewAddress([]byte("issuer"))

		So(addr.String(), ShouldEqual, fmt.Sprintf("%X", []byte(addr)))
		So(zid.Address(nil).String(), ShouldEqual, "(nil)")
	})

	Convey("condition keeps extension and type readable", t, func() {
		cond := zid.NewCondition("sigs", "ed25519", []byte{0xAB, 0xCD})

		So(cond.String(), ShouldEqual, "sigs/ed25519/ABCD")
		So(cond.String(), ShouldNotEqual, fmt.Sprintf("%X", []byte(cond)))
	})
}

func TestConditionParse(t *testing.T) {
	Convey("a well formed condition", t, func() {
		cond := zid.NewCondition("sigs", "ed25519", []byte("key\ndata"))

		Convey("validates", func() {
			So(cond.Validate(), ShouldBeNil)
		})

		Convey("splits into its parts", func() {
			ext, typ, data, err := cond.Parse()
			So(err, ShouldBeNil)
			So(ext, ShouldEqual, "sigs")
			So(typ, ShouldEqual, "ed25519")
			So(data, ShouldResemble, []byte("key\ndata"))
		})

		Convey("has a fixed size address", func() {
			So(cond.Address(), ShouldHaveLength, zid.AddressLength)
			So(cond.Address().Equals(cond.Address()), ShouldBeTrue)
		})
	})

	Convey("a malformed condition", t, func() {
		for _, c := range []zid.Condition{
			nil,
			zid.Condition("sigs/ed25519"),
			zid.Condition("s/ed25519/data"),
			zid.Condition("sigs/ed 25519/data"),
		} {
			So(errors.ErrInput.Is(c.Validate()), ShouldBeTrue)
		}
	})
}

func TestParseAddress(t *testing.T) {
	addr := zid.NewAddress([]byte("owner"))
	b32, err := addr.Bech32()
	if err != nil {
		t.Fatalf("cannot encode bech32: %s", err)
	}
	cond := zid.NewCondition("sigs", "ed25519", []byte{1, 2, 3})

	cases := map[string]struct {
		input    string
		wantErr  *errors.Error
		wantAddr zid.Address
	}{
		"hex": {
			input:    addr.String(),
			wantAddr: addr,
		},
		"lower case hex": {
			input:    fmt.Sprintf("%x", []byte(addr)),
			wantAddr: addr,
		},
		"bech32": {
			input:    b32,
			wantAddr: addr,
		},
		"condition": {
			input:    "cond:" + cond.String(),
			wantAddr: cond.Address(),
		},
		"invalid condition": {
			input:   "cond:sigs/010203",
			wantErr: errors.ErrInput,
		},
		"invalid hex": {
			input:   "zzzz",
			wantErr: errors.ErrInput,
		},
		"too short": {
			input:   "0102",
			wantErr: errors.ErrInput,
		},
		"empty": {
			input:   "",
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := zid.ParseAddress(tc.input)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %q error, got %+v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}
			if !got.Equals(tc.wantAddr) {
				t.Fatalf("want %s address, got %s", tc.wantAddr, got)
			}
		})
	}
}

func TestAddressJSON(t *testing.T) {
	Convey("address round trips through JSON as hex", t, func() {
		addr := zid.NewAddress([]byte("issuer"))
		raw, err := json.Marshal(addr)
		So(err, ShouldBeNil)
		So(string(raw), ShouldEqual, `"`+addr.String()+`"`)

		var got zid.Address
		So(json.Unmarshal(raw, &got), ShouldBeNil)
		So(got.Equals(addr), ShouldBeTrue)
	})

	Convey("empty string decodes into nil address", t, func() {
		got := zid.NewAddress([]byte("x"))
		So(json.Unmarshal([]byte(`""`), &got), ShouldBeNil)
		So(got, ShouldBeNil)
	})

	Convey("non string value is rejected", t, func() {
		var got zid.Address
		err := json.Unmarshal([]byte(`42`), &got)
		So(errors.ErrInput.Is(err), ShouldBeTrue)
	})
}
