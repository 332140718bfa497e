// Copyright 2020 Aleksandr Demakin. All rights reserved.

package steppable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		n       string
		res     string
		negated bool
	}{
		{"5", "5", false},
		{"-5", "5", true},
		{"-0.250", "0.25", true},
		{"-0", "0", false},
		{"0.1", "0.1", false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, tr := Abs(MustParse(test.n))
			a.Equal(test.res, res.String())
			a.Equal(test.negated, tr.Negated)
			a.Equal(res, tr.Result)
			a.Equal(MustParse(test.n).Precision(), res.Precision())
			a.Equal(KindAbs, tr.Kind())
		})
	}
}
