// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tt

import (
	"reflect"
	"testing"

	"github.com/db47h/ttadder/hwsim"
)

func TestBehavioral_pinout(t *testing.T) {
	if !reflect.DeepEqual(behavioral.Inputs, hwsim.IO(Inputs)) {
		t.Errorf("inputs %v do not match %q", behavioral.Inputs, Inputs)
	}
	if !reflect.DeepEqual(behavioral.Outputs, hwsim.IO(Outputs)) {
		t.Errorf("outputs %v do not match %q", behavioral.Outputs, Outputs)
	}
}
