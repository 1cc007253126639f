package service

import (
	"fmt"
	"strings"

	"academic-assistant/internal/domain"
	apperrors "academic-assistant/pkg/errors"
)

// BuildSynthesisPrompt asks for a structured Indonesian literature synthesis
// over the combined, filename-tagged journal texts.
func BuildSynthesisPrompt(combined string) string {
	return `Sebagai ahli penelitian akademis, analisis jurnal-jurnal PDF berikut dan berikan ringkasan terstruktur:

` + combined + `

BERIKAN RINGKASAN DALAM FORMAT INI (GUNAKAN BAHASA INDONESIA):

## 1. TEMUAN UTAMA SETIAP JURNAL
Untuk setiap jurnal, sebutkan:
- Poin temuan utama 1
- Poin temuan utama 2
- Poin temuan utama 3

## 2. KESAMAAN DAN PERBEDAAN ANTAR JURNAL
- Kesamaan tema/topik
- Kesamaan metodologi
- Perbedaan utama
- Perbedaan fokus penelitian

## 3. RESEARCH GAP (KESENJANGAN PENELITIAN)
Identifikasi minimal 3 gap/celah dalam penelitian:
- Gap 1: [penjelasan]
- Gap 2: [penjelasan]
- Gap 3: [penjelasan]

## 4. REKOMENDASI PENELITIAN LANJUTAN
Saran arah penelitian:
- Rekomendasi 1
- Rekomendasi 2
- Rekomendasi 3

Gunakan bahasa Indonesia formal dan akademis. Berikan output yang jelas dan terstruktur.`
}

// BuildParaphrasePrompt rewords text while keeping its meaning.
func BuildParaphrasePrompt(text string) string {
	return fmt.Sprintf(`Parafrase teks berikut dengan mempertahankan makna asli tetapi menggunakan kata-kata dan struktur kalimat yang berbeda:

"%s"

Pastikan parafrase tetap akurat dan mudah dipahami.`, text)
}

// BuildFormalPrompt lifts text into formal academic register.
func BuildFormalPrompt(text string) string {
	return fmt.Sprintf(`Ubah teks berikut menjadi gaya penulisan formal akademis:

"%s"

Tingkatkan formalitas, presisi, dan kejelasan tanpa mengubah makna inti.`, text)
}

// BuildCitationFormatPrompt explains how to cite text in style. The style is
// placed verbatim in the heading and in each of the three sub-instructions.
func BuildCitationFormatPrompt(text, style string) string {
	return fmt.Sprintf(`Format dan jelaskan bagaimana teks berikut seharusnya dikutip dalam gaya %[2]s:

"%[1]s"

Berikan:
1. Contoh kutipan langsung dalam format %[2]s
2. Contoh parafrase dengan sitasi dalam format %[2]s
3. Format entri dalam daftar pustaka %[2]s`, text, style)
}

// BuildQuoteCheckPrompt asks the model to verify a quote against its stated source.
func BuildQuoteCheckPrompt(quote, source string) string {
	return fmt.Sprintf(`Sebagai verifikator sitasi akademis, periksa kutipan berikut:

KUTIPAN: "%s"
SUMBER: %s

Berikan analisis:
1. Akurasi: ✓ Akurat / ⚠ Perlu Verifikasi / ✗ Tidak Akurat
2. Kredibilitas sumber
3. Konteks penggunaan
4. Saran perbaikan (jika ada)`, quote, source)
}

// BuildWritingPrompt selects the template for req.StyleFormat. Unknown
// formats are rejected instead of falling through to a default.
func BuildWritingPrompt(req domain.WritingRequest) (string, error) {
	format, ok := domain.ParseStyleFormat(req.StyleFormat)
	if !ok {
		return "", apperrors.NewValidationError(
			"style_format tidak dikenal: "+req.StyleFormat,
			domain.ErrUnknownStyleFormat.Error(),
		)
	}

	switch format {
	case domain.StyleFormal:
		return BuildFormalPrompt(req.Text), nil
	case domain.StyleCitation:
		// An absent or blank style both mean APA.
		style := req.CitationStyle
		if strings.TrimSpace(style) == "" {
			style = domain.DefaultCitationStyle
		}
		return BuildCitationFormatPrompt(req.Text, style), nil
	default:
		return BuildParaphrasePrompt(req.Text), nil
	}
}
