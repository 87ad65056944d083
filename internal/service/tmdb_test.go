package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviedex/internal/config"
	"github.com/user/moviedex/internal/model"
	"github.com/user/moviedex/internal/utils"
)

const listJSON = `{
	"page": 1,
	"results": [
		{"id": 603, "title": "黑客帝国", "overview": "overview", "poster_path": "/matrix.jpg",
		 "backdrop_path": null, "release_date": "1999-03-30", "vote_average": 8.2, "vote_count": 25000}
	],
	"total_pages": 10,
	"total_results": 200
}`

func newTestTMDB(baseURL string) *TMDBService {
	return NewTMDBService(&config.Config{
		TMDBAPIKey:       "test-key",
		TMDBBaseURL:      baseURL,
		TMDBImageBaseURL: "https://image.tmdb.org/t/p",
		TMDBLanguage:     "zh-CN",
		PlaceholderImage: "https://via.placeholder.com/500x750?text=No+Image",
	})
}

func TestImageURL(t *testing.T) {
	svc := newTestTMDB("http://unused")
	path := "/matrix.jpg"

	// 路径为空时无论尺寸都返回占位图
	assert.Equal(t, "https://via.placeholder.com/500x750?text=No+Image", svc.ImageURL(nil, "w500"))
	assert.Equal(t, "https://via.placeholder.com/500x750?text=No+Image", svc.ImageURL(nil, "original"))
	empty := ""
	assert.Equal(t, "https://via.placeholder.com/500x750?text=No+Image", svc.ImageURL(&empty, "w500"))

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/matrix.jpg", svc.ImageURL(&path, "w500"))
	assert.Equal(t, "https://image.tmdb.org/t/p/original/matrix.jpg", svc.ImageURL(&path, "original"))
	// 尺寸缺省为 w500
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/matrix.jpg", svc.ImageURL(&path, ""))
}

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(listJSON))
	}))
	defer srv.Close()

	svc := newTestTMDB(srv.URL)

	for _, q := range []string{"", "   ", "\t\n"} {
		movies, err := svc.Search(context.Background(), q, 1)
		require.NoError(t, err)
		assert.Empty(t, movies)
	}

	// 空关键词不应发出任何请求
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestSearchParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "matrix", r.URL.Query().Get("query"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "zh-CN", r.URL.Query().Get("language"))
		w.Write([]byte(listJSON))
	}))
	defer srv.Close()

	svc := newTestTMDB(srv.URL)
	movies, err := svc.Search(context.Background(), "matrix", 1)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, 603, movies[0].ID)
	assert.Equal(t, "黑客帝国", movies[0].Title)
	require.NotNil(t, movies[0].PosterPath)
	assert.Equal(t, "/matrix.jpg", *movies[0].PosterPath)
	assert.Nil(t, movies[0].BackdropPath)
}

func TestSearchUsesCache(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(listJSON))
	}))
	defer srv.Close()

	svc := newTestTMDB(srv.URL)
	for i := 0; i < 3; i++ {
		_, err := svc.Search(context.Background(), "matrix", 1)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestGetDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		w.Write([]byte(`{"id": 603, "title": "黑客帝国", "runtime": 136, "status": "Released",
			"tagline": "tagline", "genres": [{"id": 28, "name": "动作"}]}`))
	}))
	defer srv.Close()

	svc := newTestTMDB(srv.URL)
	details, err := svc.GetDetails(context.Background(), 603)
	require.NoError(t, err)
	assert.Equal(t, 603, details.ID)
	assert.Equal(t, 136, details.Runtime)
	require.Len(t, details.Genres, 1)
	assert.Equal(t, "动作", details.Genres[0].Name)
}

func TestGetDetailsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := newTestTMDB(srv.URL)
	_, err := svc.GetDetails(context.Background(), 99999999)
	require.Error(t, err)

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrCodeNotFound, appErr.Code)
}

func TestHomeLists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listJSON))
	}))
	defer srv.Close()

	svc := newTestTMDB(srv.URL)
	lists, err := svc.HomeLists(context.Background())
	require.NoError(t, err)
	assert.Len(t, lists.Popular, 1)
	assert.Len(t, lists.TopRated, 1)
	assert.Len(t, lists.NowPlaying, 1)
}

func TestHomeListsAllOrNothing(t *testing.T) {
	// 三路并发中有一路失败，整体必须失败，不得返回部分结果
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "top_rated") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(listJSON))
	}))
	defer srv.Close()

	svc := newTestTMDB(srv.URL)
	lists, err := svc.HomeLists(context.Background())
	require.Error(t, err)
	assert.Nil(t, lists)

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.ErrCodeUnknown, appErr.Code)
}

func TestFetchListUsesGlobalCache(t *testing.T) {
	utils.InitCache()
	defer utils.CacheClear()

	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(listJSON))
	}))
	defer srv.Close()

	svc := newTestTMDB(srv.URL)
	for i := 0; i < 3; i++ {
		movies, err := svc.GetPopular(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, movies, 1)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}
