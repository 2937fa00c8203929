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

type Topic struct {
	ID int64
	// SN 对外暴露的不透明唯一标识
	SN    string
	Title string
	// Content 主帖正文
	Content string
	// Uid 发帖人
	Uid int64
	// Rating 当前累计评分，等于该主题下所有投票值之和。
	// 只能由 rating 模块在投票事务里修改。
	Rating int64
	Utime  int64
}
