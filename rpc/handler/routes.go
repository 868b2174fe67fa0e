// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router - the HTTPS routes
//
// an empty origin list disables cross origin requests
func Router(h Handler, allowOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeaders())

	if 0 != len(allowOrigins) {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  allowOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
		}))
	}

	whisperd := router.Group("/whisperd")
	{
		whisperd.POST("/rpc", h.RPC)
		whisperd.GET("/confession/:address", h.Confession)
		whisperd.GET("/comment/:address", h.Comment)
		whisperd.GET("/derive/:author", h.Derive)
		whisperd.GET("/details", h.Details)
	}

	router.NoRoute(h.Root)
	router.NoMethod(func(c *gin.Context) {
		sendError(c, http.StatusMethodNotAllowed, "method not allowed")
	})
	router.HandleMethodNotAllowed = true

	return router
}

func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Next()
	}
}
