// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tt

import (
	"bytes"
	_ "embed"

	"github.com/pkg/errors"

	"github.com/db47h/ttadder/hwtest"
)

//go:embed scenarios.yaml
var scenarios []byte

// Scenarios returns the built-in test scenarios of the project.
//
func Scenarios() ([]hwtest.Scenario, error) {
	ss, err := hwtest.LoadScenarios(bytes.NewReader(scenarios))
	if err != nil {
		return nil, errors.Wrap(err, "built-in scenarios")
	}
	return ss, nil
}
