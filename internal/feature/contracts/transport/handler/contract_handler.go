package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContractUsecase は契約識別子に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ContractUsecase interface {
	ListContracts(ctx context.Context) ([]string, error)
}

// ContractHandler は契約識別子に関するHTTPリクエストを処理します。
type ContractHandler struct {
	uc ContractUsecase
}

// NewContractHandler は新しい ContractHandler を作成します。
func NewContractHandler(uc ContractUsecase) *ContractHandler {
	return &ContractHandler{uc: uc}
}

// List はデータセットに含まれる契約の一覧を取得するAPIです。
// フロントエンドはここで得た識別子を /bars と /series のクエリに使います。
func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.uc.ListContracts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": contracts})
}
