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

package loader

import "errors"

var (
	ErrNoDateColumn            = errors.New("no column selected for the dates")
	ErrTypesWithoutDateColumns = errors.New("column types given without explicit date columns")
	ErrDateConverterRequired   = errors.New("multiple date columns require a date converter")
	ErrEmptySource             = errors.New("source contains no data rows")
)
