package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/cadernoestudos/internal/logger"
	"github.com/example/cadernoestudos/internal/security"
)

// Chaves do contexto da requisição preenchidas pelo middleware de
// autenticação.
const (
	chaveUserID = "userID"
	chaveEmail  = "email"
)

// authMiddleware extrai o Bearer token, verifica no provedor de identidade e
// deixa uid e email no contexto. O resto da aplicação só conhece esses dois.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cabecalho := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(cabecalho, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "token de autenticação ausente"})
			return
		}

		identidade, err := s.provider.Verificar(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"erro": "token inválido ou expirado"})
			return
		}

		c.Set(chaveUserID, identidade.UserID)
		c.Set(chaveEmail, identidade.Email)
		c.Next()
	}
}

// rateLimitMiddleware barra tentativas em excesso por endereço de origem.
// O estado é em memória por processo: zera em reinício.
func rateLimitMiddleware(limiter *security.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Permitir(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"erro": "muitas tentativas, aguarde alguns minutos",
			})
			return
		}
		c.Next()
	}
}

func logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		c.Next()
		logger.Info("%s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(inicio))
	}
}
