package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"INT", "int"},
		{"int(11) unsigned", "int"},
		{"integer", "int"},
		{"int8", "bigint"},
		{"bigint unsigned", "bigint"},
		{"tinyint(1)", "boolean"},
		{"TINYINT(1) UNSIGNED", "boolean"},
		{"tinyint(4)", "tinyint"},
		{"bool", "boolean"},
		{"varchar(255)", "varchar"},
		{"character varying", "varchar"},
		{"decimal(10,2)", "decimal"},
		{"double precision", "double"},
		{"timestamp without time zone", "timestamp"},
		{"timestamp(0) without time zone", "timestamp"},
		{"datetime", "datetime"},
		{"jsonb", "json"},
		{"  text  ", "text"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeType(tt.input))
		})
	}
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		input    string
		expected TypeClass
	}{
		{"int", ClassInteger},
		{"bigint", ClassInteger},
		{"tinyint", ClassInteger},
		{"boolean", ClassBoolean},
		{"decimal", ClassDecimal},
		{"numeric", ClassDecimal},
		{"float", ClassDecimal},
		{"double", ClassDecimal},
		{"real", ClassDecimal},
		{"date", ClassDate},
		{"datetime", ClassDateTime},
		{"timestamp", ClassDateTime},
		{"json", ClassJSON},
		{"varchar", ClassString},
		{"text", ClassString},
		{"point", ClassString},
		{"time", ClassString},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassOf(tt.input))
		})
	}

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "decimal", ClassDecimal.String())
		assert.Equal(t, "unknown", TypeClass(99).String())
	})
}
