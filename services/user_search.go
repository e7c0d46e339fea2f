package services

import (
	"fmt"
	"sort"
	"strings"

	"hris/config"
	"hris/dto"
	"hris/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi. Dùng chi phí thay thế 1
// (DefaultOptions tính thay thế = xóa + chèn, lệch một ký tự sẽ bị đếm 2).
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptionsWithSub)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

// Tạo danh sách tên duy nhất đã chuẩn hóa cho closestmatch
func prepareNameList(users []models.User) []string {
	uniqueNames := make(map[string]bool)
	for _, u := range users {
		if u.Name != "" {
			uniqueNames[normalizeInput(u.Name)] = true
		}
	}

	names := make([]string, 0, len(uniqueNames))
	for name := range uniqueNames {
		names = append(names, name)
	}
	return names
}

// Tính điểm phù hợp cho một user so với query
func scoreUser(query string, user models.User, cmNames *closestmatch.ClosestMatch) int {
	normalizedName := normalizeInput(user.Name)
	score := 0

	if strings.Contains(normalizedName, query) {
		score += 20
	}
	if cmNames.Closest(query) == normalizedName {
		score += 13
	}
	if strings.HasPrefix(normalizeInput(user.Email), query) {
		score += 5
	}

	similarity := calculateSimilarity(query, normalizedName)
	score += int(similarity * 10)

	return score
}

// SearchUsersByName tìm nhân viên theo tên gần đúng, chịu được sai chính tả
// và tên không dấu.
func SearchUsersByName(query string, limit int) ([]dto.UserSearchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("không thể lấy danh sách người dùng: %v", err)
	}

	normalizedQuery := normalizeInput(query)
	cmNames := createMatcher(prepareNameList(users))

	results := make([]dto.UserSearchResult, 0)
	for _, u := range users {
		score := scoreUser(normalizedQuery, u, cmNames)
		if score <= 5 {
			continue
		}
		results = append(results, dto.UserSearchResult{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Score: score,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
