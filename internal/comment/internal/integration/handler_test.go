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

//go:build e2e

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/forum/internal/comment/internal/integration/startup"
	"github.com/ecodeclub/forum/internal/comment/internal/repository/dao"
	"github.com/ecodeclub/forum/internal/comment/internal/web"
	"github.com/ecodeclub/forum/internal/test"
	testioc "github.com/ecodeclub/forum/internal/test/ioc"
	"github.com/ecodeclub/forum/internal/topic"
	"github.com/ecodeclub/forum/internal/user"
	usermocks "github.com/ecodeclub/forum/internal/user/mocks"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testUID  = int64(12345)
	testUID2 = int64(12346)
)

type HandlerTestSuite struct {
	suite.Suite
	server      *egin.Component
	db          *egorm.Component
	dao         dao.CommentDAO
	topicModule *topic.Module
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	err := dao.InitTables(s.db)
	s.NoError(err)
	s.dao = dao.NewCommentGORMDAO(s.db)

	s.topicModule, err = topic.InitModule(s.db)
	s.NoError(err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
}

func (s *HandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	mockUserSvc := usermocks.NewMockUserService(ctrl)
	s.setupMockUserService(mockUserSvc)

	commentModule, err := startup.InitModule(s.topicModule, &user.Module{Svc: mockUserSvc})
	s.NoError(err)

	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	commentModule.Hdl.PublicRoutes(server.Engine)
	commentModule.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) setupMockUserService(mockUserSvc *usermocks.MockUserService) {
	testUsers := map[int64]user.User{
		testUID:  {Id: testUID, Nickname: "测试用户1", Avatar: "avatar1.jpg"},
		testUID2: {Id: testUID2, Nickname: "测试用户2", Avatar: "avatar2.jpg"},
	}
	mockUserSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) ([]user.User, error) {
			users := make([]user.User, 0, len(ids))
			for _, id := range ids {
				if u, exists := testUsers[id]; exists {
					users = append(users, u)
				}
			}
			return users, nil
		}).AnyTimes()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `comments`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `topics`").Error)
}

// 创建一个主题，返回主题ID
func (s *HandlerTestSuite) createTopic() int64 {
	id, err := s.topicModule.Svc.Create(context.Background(), topic.Topic{
		Title:   fmt.Sprintf("测试主题_%d", time.Now().UnixNano()),
		Content: "主题正文",
		Uid:     testUID,
	})
	s.NoError(err)
	return id
}

// 直接落库创建评论，返回评论ID
func (s *HandlerTestSuite) createComment(uid, topicID, parentID int64, content string) int64 {
	now := time.Now().UnixMilli()
	cmt := dao.Comment{
		Uid:     uid,
		TopicID: topicID,
		ParentID: sql.Null[int64]{
			V:     parentID,
			Valid: parentID != 0,
		},
		Content: content,
		Enabled: true,
		Ctime:   now,
		Utime:   now,
	}
	s.NoError(s.db.Create(&cmt).Error)
	return cmt.ID
}

func (s *HandlerTestSuite) TestCreateComment() {
	testCases := []struct {
		name     string
		before   func() (topicID, parentID int64)
		content  string
		wantCode int
		after    func(commentID int64)
	}{
		{
			name: "创建根评论成功",
			before: func() (int64, int64) {
				return s.createTopic(), 0
			},
			content:  "这是一个测试评论",
			wantCode: 200,
			after: func(commentID int64) {
				var cmt dao.Comment
				s.NoError(s.db.First(&cmt, commentID).Error)
				s.Equal("这是一个测试评论", cmt.Content)
				s.False(cmt.ParentID.Valid)
				s.True(cmt.Enabled)
			},
		},
		{
			name: "创建回复成功",
			before: func() (int64, int64) {
				topicID := s.createTopic()
				parentID := s.createComment(testUID2, topicID, 0, "一楼")
				return topicID, parentID
			},
			content:  "同意楼上",
			wantCode: 200,
			after: func(commentID int64) {
				var cmt dao.Comment
				s.NoError(s.db.First(&cmt, commentID).Error)
				s.True(cmt.ParentID.Valid)
			},
		},
		{
			name: "回复已删除的评论也可以成功",
			before: func() (int64, int64) {
				topicID := s.createTopic()
				parentID := s.createComment(testUID, topicID, 0, "一楼")
				_, err := s.dao.Delete(context.Background(), parentID, testUID)
				s.NoError(err)
				return topicID, parentID
			},
			content:  "楼主说了什么",
			wantCode: 200,
			after: func(commentID int64) {
				var cmt dao.Comment
				s.NoError(s.db.First(&cmt, commentID).Error)
				s.True(cmt.ParentID.Valid)
				s.True(cmt.Enabled)
			},
		},
		{
			name: "主题不存在",
			before: func() (int64, int64) {
				return 99999999, 0
			},
			content:  "评论一个不存在的主题",
			wantCode: 500,
		},
		{
			name: "父评论不存在",
			before: func() (int64, int64) {
				return s.createTopic(), 99999999
			},
			content:  "回复不存在的评论",
			wantCode: 500,
		},
		{
			name: "父评论属于另一个主题",
			before: func() (int64, int64) {
				otherTopicID := s.createTopic()
				parentID := s.createComment(testUID2, otherTopicID, 0, "别的主题的一楼")
				return s.createTopic(), parentID
			},
			content:  "串台了",
			wantCode: 500,
		},
		{
			name: "空内容评论失败",
			before: func() (int64, int64) {
				return s.createTopic(), 0
			},
			content:  "",
			wantCode: 500,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			topicID, parentID := tc.before()
			req := web.CreateRequest{
				TopicID:  topicID,
				ParentID: parentID,
				Content:  tc.content,
			}
			httpReq, err := http.NewRequest(http.MethodPost, "/comment/create", iox.NewJSONReader(req))
			s.NoError(err)
			httpReq.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, httpReq)
			s.Equal(tc.wantCode, recorder.Code,
				fmt.Sprintf("Response: %s", recorder.Body.String()))
			if tc.after != nil && recorder.Code == 200 {
				tc.after(recorder.MustScan().Data)
			}
		})
	}
}

func (s *HandlerTestSuite) TestList() {
	topicID := s.createTopic()
	root1 := s.createComment(testUID, topicID, 0, "一楼")
	s.createComment(testUID2, topicID, root1, "回复一楼")
	root2 := s.createComment(testUID2, topicID, 0, "二楼")
	// 另一个主题的评论不应该出现
	otherTopicID := s.createTopic()
	s.createComment(testUID, otherTopicID, 0, "别的主题的一楼")

	req := web.ListRequest{TopicID: topicID, Offset: 0, Limit: 10}
	httpReq, err := http.NewRequest(http.MethodPost, "/comment/list", iox.NewJSONReader(req))
	s.NoError(err)
	httpReq.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CommentList]()
	s.server.ServeHTTP(recorder, httpReq)
	s.Equal(200, recorder.Code)

	data := recorder.MustScan().Data
	s.Equal(2, data.Total)
	s.Require().Len(data.Comments, 2)
	// 根评论按创建顺序的倒序
	s.Equal(root2, data.Comments[0].ID)
	s.Equal(root1, data.Comments[1].ID)
	s.Equal("测试用户2", data.Comments[0].User.Nickname)
	// 带上部分回复
	s.Require().Len(data.Comments[1].Replies, 1)
	s.Equal("回复一楼", data.Comments[1].Replies[0].Content)
	s.Equal("测试用户2", data.Comments[1].Replies[0].User.Nickname)
}

func (s *HandlerTestSuite) TestReplies() {
	topicID := s.createTopic()
	root := s.createComment(testUID, topicID, 0, "一楼")
	s.createComment(testUID2, topicID, root, "最早的回复")
	reply2 := s.createComment(testUID, topicID, root, "后来的回复")
	reply3 := s.createComment(testUID2, topicID, root, "最晚的回复")

	req := web.RepliesRequest{ParentID: root, Offset: 1, Limit: 10}
	httpReq, err := http.NewRequest(http.MethodPost, "/comment/replies", iox.NewJSONReader(req))
	s.NoError(err)
	httpReq.Header.Set("Content-Type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CommentList]()
	s.server.ServeHTTP(recorder, httpReq)
	s.Equal(200, recorder.Code)

	data := recorder.MustScan().Data
	s.Equal(3, data.Total)
	// 回复按创建顺序排序，偏移量跳过了最早的一条
	s.Require().Len(data.Comments, 2)
	s.Equal(reply2, data.Comments[0].ID)
	s.Equal(reply3, data.Comments[1].ID)
}

func (s *HandlerTestSuite) TestDelete() {
	s.Run("作者删除成功，保留占位文案", func() {
		topicID := s.createTopic()
		root := s.createComment(testUID, topicID, 0, "一楼")
		s.createComment(testUID2, topicID, root, "回复一楼")

		req := web.DeleteRequest{ID: root}
		httpReq, err := http.NewRequest(http.MethodPost, "/comment/delete", iox.NewJSONReader(req))
		s.NoError(err)
		httpReq.Header.Set("Content-Type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.Comment]()
		s.server.ServeHTTP(recorder, httpReq)
		s.Equal(200, recorder.Code)
		s.Equal(dao.TombstoneContent, recorder.MustScan().Data.Content)
		s.False(recorder.MustScan().Data.Enabled)

		// 行还在，回复也还在
		var cmt dao.Comment
		s.NoError(s.db.First(&cmt, root).Error)
		s.Equal(dao.TombstoneContent, cmt.Content)
		s.False(cmt.Enabled)
		var replyCount int64
		s.NoError(s.db.Model(&dao.Comment{}).Where("parent_id = ?", root).Count(&replyCount).Error)
		s.Equal(int64(1), replyCount)
	})

	s.Run("重复删除是幂等的", func() {
		topicID := s.createTopic()
		root := s.createComment(testUID, topicID, 0, "一楼")
		for i := 0; i < 2; i++ {
			req := web.DeleteRequest{ID: root}
			httpReq, err := http.NewRequest(http.MethodPost, "/comment/delete", iox.NewJSONReader(req))
			s.NoError(err)
			httpReq.Header.Set("Content-Type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Comment]()
			s.server.ServeHTTP(recorder, httpReq)
			s.Equal(200, recorder.Code)
			s.Equal(dao.TombstoneContent, recorder.MustScan().Data.Content)
		}
	})

	s.Run("不是作者删除失败", func() {
		topicID := s.createTopic()
		other := s.createComment(testUID2, topicID, 0, "别人的评论")

		req := web.DeleteRequest{ID: other}
		httpReq, err := http.NewRequest(http.MethodPost, "/comment/delete", iox.NewJSONReader(req))
		s.NoError(err)
		httpReq.Header.Set("Content-Type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.Comment]()
		s.server.ServeHTTP(recorder, httpReq)
		s.Equal(500, recorder.Code)

		// 原评论原封不动
		var cmt dao.Comment
		s.NoError(s.db.First(&cmt, other).Error)
		s.Equal("别人的评论", cmt.Content)
		s.True(cmt.Enabled)
	})

	s.Run("评论不存在", func() {
		req := web.DeleteRequest{ID: 99999999}
		httpReq, err := http.NewRequest(http.MethodPost, "/comment/delete", iox.NewJSONReader(req))
		s.NoError(err)
		httpReq.Header.Set("Content-Type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.Comment]()
		s.server.ServeHTTP(recorder, httpReq)
		s.Equal(500, recorder.Code)
	})
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
