package blogpb

// Post is the wire form of one blog post.
type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Author      string   `json:"author,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	SeriesID    string   `json:"series_id,omitempty"`
	Part        int32    `json:"part"`
	Description string   `json:"description,omitempty"`
	DateUnix    int64    `json:"date_unix,omitempty"`
	Draft       bool     `json:"draft,omitempty"`
}

type ListPostsRequest struct {
	Q        string   `json:"q,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	SeriesID string   `json:"series_id,omitempty"`
	Limit    int32    `json:"limit,omitempty"`
	Offset   int32    `json:"offset,omitempty"`
}

type ListPostsResponse struct {
	Total  int32   `json:"total"`
	Limit  int32   `json:"limit"`
	Offset int32   `json:"offset"`
	Items  []*Post `json:"items"`
}

type GetPostRequest struct {
	Slug string `json:"slug"`
}

type GetPostResponse struct {
	Post *Post `json:"post"`
}

type GetSeriesRequest struct {
	SeriesID string `json:"series_id"`
}

type GetSeriesResponse struct {
	SeriesID string  `json:"series_id"`
	Overview *Post   `json:"overview,omitempty"`
	Parts    []*Post `json:"parts"`
}

type GetSeriesNavRequest struct {
	Slug string `json:"slug"`
}

type GetSeriesNavResponse struct {
	SeriesID string `json:"series_id,omitempty"`
	Part     int32  `json:"part"`
	Overview *Post  `json:"overview,omitempty"`
	Previous *Post  `json:"previous,omitempty"`
	Next     *Post  `json:"next,omitempty"`
}
