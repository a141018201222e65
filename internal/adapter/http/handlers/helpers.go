package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

const projectListPath = "/projects_list/"

// pathID parses a numeric path parameter. Anything that is not a positive
// integer could never address an entity, so callers treat false as not found.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// postFormValues returns the submitted url-encoded body fields.
func postFormValues(c *gin.Context) url.Values {
	_ = c.Request.ParseForm()
	return c.Request.PostForm
}

func taskListPath(projectID uint64) string {
	return fmt.Sprintf("/task_list/%d/", projectID)
}
