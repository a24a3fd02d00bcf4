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

package extras

import "errors"

var (
	ErrUnsupportedWidth  = errors.New("no calendar correction known for this row width")
	ErrFreqWidthMismatch = errors.New("row width does not match the series frequency")
	ErrTooFewDates       = errors.New("at least two dates are needed to estimate a frequency")
)
