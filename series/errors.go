// Copyright 2022-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package series

import "errors"

var (
	ErrInvalidInput    = errors.New("input must be a valid time series")
	ErrUnsupportedRank = errors.New("only 1-D and 2-D series are supported")
	ErrShapeMismatch   = errors.New("dates and values must have the same length")
	ErrRaggedRows      = errors.New("all rows must have the same width")
	ErrNoNumericData   = errors.New("no numeric columns in record series")
)
