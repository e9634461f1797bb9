package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	oracletypes "github.com/veris-chain/veris/x/oracle/types"
)

// queryStore reads one key from the oracle module store of the connected
// node. A nil result with no error means the key is absent.
func (s *Server) queryStore(key []byte) ([]byte, error) {
	path := fmt.Sprintf("store/%s/key", oracletypes.StoreKey)
	res, _, err := s.clientCtx.QueryWithData(path, key)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// handleParams returns the oracle module parameters
func (s *Server) handleParams(c *gin.Context) {
	res, err := s.queryStore(oracletypes.ParamsKey)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "node query failed", Details: err.Error()})
		return
	}

	// Defaults apply until the first explicit parameter write.
	params := oracletypes.DefaultParams()
	if len(res) > 0 {
		if err := oracletypes.ModuleCdc.UnmarshalJSON(res, &params); err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to decode stored record", Details: err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, params)
}

// handleRegistry returns the node registry
func (s *Server) handleRegistry(c *gin.Context) {
	res, err := s.queryStore(oracletypes.NodeRegistryKey)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "node query failed", Details: err.Error()})
		return
	}
	if len(res) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "registry not initialized", Code: "NOT_FOUND"})
		return
	}

	var registry oracletypes.NodeRegistry
	if err := oracletypes.ModuleCdc.UnmarshalJSON(res, &registry); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to decode stored record", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, newRegistryView(registry))
}

// handleFeed returns one feed by authority and name
func (s *Server) handleFeed(c *gin.Context) {
	feed, ok := s.fetchFeed(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newFeedView(feed, time.Now().Unix()))
}

// handleAnswerHistory returns a feed's retained answers, oldest first
func (s *Server) handleAnswerHistory(c *gin.Context) {
	feed, ok := s.fetchFeed(c)
	if !ok {
		return
	}

	answers := feed.AnswerHistoryChronological()
	views := make([]answerView, 0, len(answers))
	for _, a := range answers {
		views = append(views, newAnswerView(a))
	}

	c.JSON(http.StatusOK, historyView{
		Authority: feed.Authority,
		Name:      feed.Name,
		Answers:   views,
	})
}

// fetchFeed resolves the feed named by the request path, writing the error
// response itself when resolution fails.
func (s *Server) fetchFeed(c *gin.Context) (oracletypes.Feed, bool) {
	authority := c.Param("authority")
	name := c.Param("name")

	if err := ValidateAuthority(authority); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid authority", Details: err.Error()})
		return oracletypes.Feed{}, false
	}
	if err := ValidateFeedName(name); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid feed name", Details: err.Error()})
		return oracletypes.Feed{}, false
	}

	res, err := s.queryStore(oracletypes.GetFeedKey(authority, name))
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "node query failed", Details: err.Error()})
		return oracletypes.Feed{}, false
	}
	if len(res) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "feed not found", Code: "NOT_FOUND"})
		return oracletypes.Feed{}, false
	}

	var feed oracletypes.Feed
	if err := oracletypes.ModuleCdc.UnmarshalJSON(res, &feed); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to decode stored record", Details: err.Error()})
		return oracletypes.Feed{}, false
	}

	return feed, true
}

// handleDataSource returns one data source by hex content id
func (s *Server) handleDataSource(c *gin.Context) {
	id, err := parseHexBytes(c.Param("id"), dataSourceIDLength)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid data source id", Details: err.Error()})
		return
	}

	res, err := s.queryStore(oracletypes.GetDataSourceKey(id))
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "node query failed", Details: err.Error()})
		return
	}
	if len(res) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "data source not found", Code: "NOT_FOUND"})
		return
	}

	var source oracletypes.DataSource
	if err := oracletypes.ModuleCdc.UnmarshalJSON(res, &source); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to decode stored record", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, newDataSourceView(source))
}

// handleEthLink returns one permit by hex owner address and grantee
func (s *Server) handleEthLink(c *gin.Context) {
	owner, err := parseHexBytes(c.Param("owner"), oracletypes.EthAddressLength)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid owner address", Details: err.Error()})
		return
	}
	grantee := c.Param("grantee")

	res, err := s.queryStore(oracletypes.GetEthLinkKey(owner, grantee))
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "node query failed", Details: err.Error()})
		return
	}
	if len(res) == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "link not found", Code: "NOT_FOUND"})
		return
	}

	var link oracletypes.EthLink
	if err := oracletypes.ModuleCdc.UnmarshalJSON(res, &link); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to decode stored record", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, newEthLinkView(link))
}
