package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/location/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockUC, handler.locationUC)
}

func TestLocationHandler_ReportLocation(t *testing.T) {
	tests := []struct {
		name           string
		userID         string
		body           string
		mockSetup      func(*mocks.MockLocationUC)
		expectedStatus int
	}{
		{
			name:   "Success",
			userID: "10",
			body:   `{"latitude":-6.175392,"longitude":106.827153,"accuracy":12}`,
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					ReportLocation(gomock.Any(), "10", models.Location{Latitude: -6.175392, Longitude: 106.827153, Accuracy: 12}).
					Return(&models.Location{Latitude: -6.175392, Longitude: 106.827153, Geohash: "qqguyur"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Anonymous caller",
			body:           `{"latitude":1,"longitude":2}`,
			mockSetup:      func(*mocks.MockLocationUC) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid request body",
			userID:         "10",
			body:           `{"latitude":"north"}`,
			mockSetup:      func(*mocks.MockLocationUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Validation error",
			userID: "10",
			body:   `{"latitude":95,"longitude":2}`,
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					ReportLocation(gomock.Any(), "10", gomock.Any()).
					Return(nil, &utils.ValidationError{Details: []utils.ErrorDetail{{Field: "latitude", Message: "must be at most 90"}}})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Store failure",
			userID: "10",
			body:   `{"latitude":1,"longitude":2}`,
			mockSetup: func(mockUC *mocks.MockLocationUC) {
				mockUC.EXPECT().
					ReportLocation(gomock.Any(), "10", gomock.Any()).
					Return(nil, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockLocationUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewLocationHandler(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/locations", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.userID != "" {
				c.Set(requestcontext.EchoUserID, tt.userID)
			}

			err := handler.ReportLocation(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, true, body["success"])
			} else {
				assert.Equal(t, false, body["success"])
			}
		})
	}
}
