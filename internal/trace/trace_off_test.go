// Copyright 2026 The Copybook Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !trace

package trace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledTraceIsNoop(t *testing.T) {
	require.False(t, Enabled())
	Logf("this should go nowhere: %d", 42)
	var buf bytes.Buffer
	Flush(&buf)
	require.Empty(t, buf.String())
}
