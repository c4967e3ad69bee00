package router

import (
	"encoding/json"
	"net/http"
)

func decodeJSON(res *http.Response, v interface{}) error {
	return json.NewDecoder(res.Body).Decode(v)
}
