package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/user/moviedex/internal/config"
	"github.com/user/moviedex/internal/model"
	"github.com/user/moviedex/internal/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// 列表接口缓存时长，搜索结果走 LRU 缓存
const listCacheTTL = 5 * time.Minute

type TMDBService struct {
	config      *config.Config
	client      *utils.HTTPClient
	searchCache *utils.SearchCache[[]model.Movie]
	group       singleflight.Group
}

func NewTMDBService(cfg *config.Config) *TMDBService {
	return &TMDBService{
		config:      cfg,
		client:      utils.NewHTTPClient(10 * time.Second),
		searchCache: utils.NewSearchCache[[]model.Movie](1000, time.Hour),
	}
}

// buildURL 拼接 TMDB 请求地址，统一附加 api_key 和语言参数
func (s *TMDBService) buildURL(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", s.config.TMDBAPIKey)
	params.Set("language", s.config.TMDBLanguage)
	return s.config.TMDBBaseURL + path + "?" + params.Encode()
}

// fetchList 请求列表接口并返回 results 数组，命中缓存时不发请求
func (s *TMDBService) fetchList(ctx context.Context, path string, page int) ([]model.Movie, error) {
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	params.Set("page", fmt.Sprintf("%d", page))
	reqURL := s.buildURL(path, params)

	if utils.Cache != nil {
		if cached, ok := utils.CacheGet(reqURL); ok {
			return cached.([]model.Movie), nil
		}
	}

	var list model.MovieList
	if err := s.client.GetJSON(ctx, reqURL, &list); err != nil {
		return nil, classifyFetchError(err)
	}

	if utils.Cache != nil {
		utils.CacheSet(reqURL, list.Results, listCacheTTL)
	}
	return list.Results, nil
}

// GetPopular 热门电影
func (s *TMDBService) GetPopular(ctx context.Context, page int) ([]model.Movie, error) {
	return s.fetchList(ctx, "/movie/popular", page)
}

// GetTopRated 高分电影
func (s *TMDBService) GetTopRated(ctx context.Context, page int) ([]model.Movie, error) {
	return s.fetchList(ctx, "/movie/top_rated", page)
}

// GetNowPlaying 正在上映
func (s *TMDBService) GetNowPlaying(ctx context.Context, page int) ([]model.Movie, error) {
	return s.fetchList(ctx, "/movie/now_playing", page)
}

// Search 搜索电影，空关键词直接返回空结果，不发请求
func (s *TMDBService) Search(ctx context.Context, query string, page int) ([]model.Movie, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Movie{}, nil
	}
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", fmt.Sprintf("%d", page))
	reqURL := s.buildURL("/search/movie", params)

	if cached, ok := s.searchCache.Get(reqURL); ok {
		return cached, nil
	}

	var list model.MovieList
	if err := s.client.GetJSON(ctx, reqURL, &list); err != nil {
		return nil, classifyFetchError(err)
	}

	s.searchCache.Set(reqURL, list.Results)
	return list.Results, nil
}

// GetDetails 电影详情，并发重复请求用 singleflight 合并
func (s *TMDBService) GetDetails(ctx context.Context, movieID int) (*model.MovieDetails, error) {
	key := fmt.Sprintf("detail:%d", movieID)
	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		var details model.MovieDetails
		reqURL := s.buildURL(fmt.Sprintf("/movie/%d", movieID), nil)
		if err := s.client.GetJSON(ctx, reqURL, &details); err != nil {
			return nil, classifyFetchError(err)
		}
		return &details, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*model.MovieDetails), nil
}

// GetRecommendations 相关推荐
func (s *TMDBService) GetRecommendations(ctx context.Context, movieID int) ([]model.Movie, error) {
	return s.fetchList(ctx, fmt.Sprintf("/movie/%d/recommendations", movieID), 1)
}

// HomeLists 首页三个列表并发获取，任一失败则整体失败，不返回部分结果
func (s *TMDBService) HomeLists(ctx context.Context) (*model.HomeLists, error) {
	var lists model.HomeLists

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		movies, err := s.GetPopular(ctx, 1)
		if err != nil {
			return err
		}
		lists.Popular = movies
		return nil
	})
	g.Go(func() error {
		movies, err := s.GetTopRated(ctx, 1)
		if err != nil {
			return err
		}
		lists.TopRated = movies
		return nil
	})
	g.Go(func() error {
		movies, err := s.GetNowPlaying(ctx, 1)
		if err != nil {
			return err
		}
		lists.NowPlaying = movies
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &lists, nil
}

// ImageURL 拼接图片完整地址，路径为空时返回占位图。纯字符串操作，不发请求
func (s *TMDBService) ImageURL(path *string, size string) string {
	if path == nil || *path == "" {
		return s.config.PlaceholderImage
	}
	if size == "" {
		size = "w500"
	}
	return s.config.TMDBImageBaseURL + "/" + size + *path
}

// classifyFetchError 把网络层错误归类为业务错误码
func classifyFetchError(err error) error {
	if errors.Is(err, utils.ErrNotFoundStatus) {
		return model.NewAppError(model.ErrCodeNotFound, "电影不存在")
	}
	log.Printf("[TMDB] 请求失败: %v", err)
	return model.NewAppError(model.ErrCodeUnknown, "获取数据失败，请稍后重试")
}
