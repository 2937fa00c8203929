// Copyright 2023 ecodeclub
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

package domain

// Rating 某个主题的评分视角，带上当前用户自己的投票
type Rating struct {
	TopicID int64
	// Score 所有有效投票的和
	Score int64
	// MyVote 当前用户的投票，-1、1，0 表示没投
	MyVote int
}

// Vote 一个用户对一个主题的投票，一人一票
type Vote struct {
	Uid     int64
	TopicID int64
	// Value 只能是 -1 或 1
	Value int
	Utime int64
}
