package database

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var decimalType = reflect.TypeOf(decimal.Decimal{})

// NewBSONRegistry returns the default registry extended so decimal.Decimal is
// stored as BSON Decimal128.
func NewBSONRegistry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(decimalType, decimalCodec{})
	reg.RegisterTypeDecoder(decimalType, decimalCodec{})
	return reg
}

type decimalCodec struct{}

func (decimalCodec) EncodeValue(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	if !val.IsValid() || val.Type() != decimalType {
		return bsoncodec.ValueEncoderError{Name: "DecimalEncodeValue", Types: []reflect.Type{decimalType}, Received: val}
	}

	d128, err := primitive.ParseDecimal128(val.Interface().(decimal.Decimal).String())
	if err != nil {
		return err
	}
	return vw.WriteDecimal128(d128)
}

// DecodeValue also accepts doubles, integers and strings, which is how
// documents written by other clients carry amounts.
func (decimalCodec) DecodeValue(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() || val.Type() != decimalType {
		return bsoncodec.ValueDecoderError{Name: "DecimalDecodeValue", Types: []reflect.Type{decimalType}, Received: val}
	}

	var d decimal.Decimal
	switch vr.Type() {
	case bsontype.Decimal128:
		v, err := vr.ReadDecimal128()
		if err != nil {
			return err
		}
		if d, err = decimal.NewFromString(v.String()); err != nil {
			return err
		}
	case bsontype.Double:
		f, err := vr.ReadDouble()
		if err != nil {
			return err
		}
		d = decimal.NewFromFloat(f)
	case bsontype.Int32:
		i, err := vr.ReadInt32()
		if err != nil {
			return err
		}
		d = decimal.NewFromInt32(i)
	case bsontype.Int64:
		i, err := vr.ReadInt64()
		if err != nil {
			return err
		}
		d = decimal.NewFromInt(i)
	case bsontype.String:
		s, err := vr.ReadString()
		if err != nil {
			return err
		}
		if d, err = decimal.NewFromString(s); err != nil {
			return err
		}
	case bsontype.Null:
		if err := vr.ReadNull(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot decode BSON %s into decimal.Decimal", vr.Type())
	}

	val.Set(reflect.ValueOf(d))
	return nil
}
