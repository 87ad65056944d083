package model

// Movie TMDB 电影摘要（列表/搜索返回）
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
}

// Genre 电影类型
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieDetails 电影详情（详情接口返回，摘要字段加扩展字段）
type MovieDetails struct {
	Movie
	Genres  []Genre `json:"genres"`
	Runtime int     `json:"runtime"`
	Status  string  `json:"status"`
	Tagline string  `json:"tagline"`
}

// MovieList TMDB 列表接口响应
type MovieList struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// HomeLists 首页三个列表的聚合结果
type HomeLists struct {
	Popular    []Movie `json:"popular"`
	TopRated   []Movie `json:"top_rated"`
	NowPlaying []Movie `json:"now_playing"`
}
